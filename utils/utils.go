package utils

import (
	"io/fs"
	urlParser "net/url"
	"os"
	"path/filepath"
	"strings"

	. "github.com/redexp/familymuseum-lsp/types"
)

const DatasetExt = ".family.json"

func UriToPath(uri Uri) (string, error) {
	if strings.HasPrefix(uri, "/") {
		return uri, nil
	}

	url, err := urlParser.Parse(uri)

	if err != nil {
		return "", err
	}

	return url.Path, nil
}

func ToUri(path string) Uri {
	if strings.HasPrefix(path, "/") {
		path = "file://" + path
	}

	return path
}

func NormalizeUri(uri Uri) (Uri, error) {
	path, err := UriToPath(uri)

	if err != nil {
		return "", err
	}

	return ToUri(path), nil
}

func IsDatasetUri(uri Uri) bool {
	return strings.HasSuffix(strings.ToLower(uri), DatasetExt)
}

func GetText(uri Uri) (string, error) {
	path, err := UriToPath(uri)

	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WalkFiles calls cb for every dataset file under the folder uri.
func WalkFiles(uri Uri, cb func(Uri) error) (err error) {
	rootPath, err := UriToPath(uri)

	if err != nil {
		return
	}

	return filepath.Walk(rootPath, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if !IsDatasetUri(info.Name()) {
			return nil
		}

		return cb(ToUri(path))
	})
}

// ContainsFold reports whether lowerQuery is a substring of s ignoring case.
// lowerQuery must already be lower cased.
func ContainsFold(s string, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func AnyContains(list []string, pred func(string) bool) bool {
	for _, item := range list {
		if pred(item) {
			return true
		}
	}

	return false
}

func P[T ~string | ~int32](src T) *T {
	return &src
}
