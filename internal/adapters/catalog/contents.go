package catalog

import "encoding/json"

// contentsFile mirrors the Contents.json manifest found in every
// catalog directory. Only the fields the generator needs are decoded;
// unknown keys are ignored so newer catalog formats still scan.
type contentsFile struct {
	Info       contentsInfo       `json:"info"`
	Properties contentsProperties `json:"properties"`
	Images     []imageEntry       `json:"images"`
	Colors     []colorEntry       `json:"colors"`
	Data       []dataEntry        `json:"data"`
	Symbols    []symbolEntry      `json:"symbols"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contentsProperties struct {
	ProvidesNamespace bool `json:"provides-namespace"`
}

type imageEntry struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
}

type colorEntry struct {
	Idiom string          `json:"idiom"`
	Color json.RawMessage `json:"color"`
}

type dataEntry struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
}

type symbolEntry struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
}

// payloadFilenames returns every payload file the manifest references
func (c *contentsFile) payloadFilenames() []string {
	var files []string
	for _, img := range c.Images {
		if img.Filename != "" {
			files = append(files, img.Filename)
		}
	}
	for _, d := range c.Data {
		if d.Filename != "" {
			files = append(files, d.Filename)
		}
	}
	for _, s := range c.Symbols {
		if s.Filename != "" {
			files = append(files, s.Filename)
		}
	}
	return files
}
