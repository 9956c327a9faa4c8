/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"

	"github.com/unidoc/unippt/common"
)

// pptStreamName is the compound file stream holding the record stream.
const pptStreamName = "PowerPoint Document"

// Open loads the slide show stored in the compound file at `path`.
func Open(path string) (*SlideShow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Load reads a slide show from the compound file in `ra`. Property set streams such as the
// summary information are collected into SlideShow.Properties.
func Load(ra io.ReaderAt) (*SlideShow, error) {
	doc, err := mscfb.New(ra)
	if err != nil {
		return nil, fmt.Errorf("reading compound file: %w", err)
	}

	stream, properties, err := readEntries(doc.Next)
	if err != nil {
		return nil, err
	}

	if stream == nil {
		return nil, ErrStreamNotFound
	}
	common.Log.Debug("%s stream: %d bytes, %d properties", pptStreamName, len(stream), len(properties))

	ppt, err := Parse(bytes.NewReader(stream))
	if err != nil {
		return nil, err
	}
	ppt.properties = properties
	return ppt, nil
}

// readEntries walks the compound file directory through `next` and returns the document stream
// and the properties of every property set stream. `next` signals the end with io.EOF.
func readEntries(next func() (*mscfb.File, error)) ([]byte, map[string]string, error) {
	var stream []byte
	properties := map[string]string{}
	for {
		entry, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading compound file directory: %w", err)
		}

		switch {
		case entry.Name == pptStreamName:
			stream = make([]byte, entry.Size)
			if _, err := io.ReadFull(entry, stream); err != nil {
				return nil, nil, fmt.Errorf("reading %s stream: %w", pptStreamName, err)
			}
		case msoleps.IsMSOLEPS(entry.Initial):
			props := msoleps.New()
			if err := props.Reset(entry); err != nil {
				common.Log.Debug("Skipping property set %q: %v", entry.Name, err)
				continue
			}
			for _, prop := range props.Property {
				properties[prop.Name] = fmt.Sprint(prop)
			}
		}
	}
	return stream, properties, nil
}
