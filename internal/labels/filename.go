package labels

import (
	"path"
	"strings"
)

const defaultFilename = "labels.pdf"

var dispositionEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", "")

// LabelFilename derives the download name from the uploaded manifest name.
// A trailing .csv (any case) is replaced by .pdf; other names keep their
// extension and get .pdf appended.
func LabelFilename(upload string) string {
	name := path.Base(strings.ReplaceAll(upload, `\`, "/"))
	if name == "." || name == "/" {
		return defaultFilename
	}
	if ext := path.Ext(name); strings.EqualFold(ext, ".csv") {
		name = strings.TrimSuffix(name, ext)
	}
	if strings.TrimSpace(name) == "" {
		return defaultFilename
	}
	return name + ".pdf"
}

// ContentDisposition builds an attachment header value for filename.
func ContentDisposition(filename string) string {
	return `attachment; filename="` + dispositionEscaper.Replace(filename) + `"`
}
