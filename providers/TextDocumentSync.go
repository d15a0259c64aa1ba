package providers

import (
	. "github.com/redexp/familymuseum-lsp/types"
	. "github.com/redexp/familymuseum-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func DocOpen(_ *Ctx, params *proto.DidOpenTextDocumentParams) (err error) {
	uri, err := datasetUri(params.TextDocument.URI)

	if err != nil || uri == "" {
		return
	}

	datasets.Open(uri, params.TextDocument.Text)

	reloadDatasets()

	return
}

func DocClose(_ *Ctx, params *proto.DidCloseTextDocumentParams) (err error) {
	uri, err := datasetUri(params.TextDocument.URI)

	if err != nil || uri == "" {
		return
	}

	datasets.Close(uri)

	return
}

func DocChange(_ *Ctx, params *proto.DidChangeTextDocumentParams) (err error) {
	uri, err := datasetUri(params.TextDocument.URI)

	if err != nil || uri == "" {
		return
	}

	for _, wrap := range params.ContentChanges {
		switch change := wrap.(type) {
		case proto.TextDocumentContentChangeEventWhole:
			datasets.Change(uri, change.Text)

		case proto.TextDocumentContentChangeEvent:
			if change.Range != nil {
				log.Warningf("%s: incremental change ignored, full sync expected", uri)
				continue
			}

			datasets.Change(uri, change.Text)
		}
	}

	reloadDatasets()

	return
}

func DocDelete(_ *Ctx, params *proto.DeleteFilesParams) error {
	for _, file := range params.Files {
		uri, err := datasetUri(file.URI)

		if err != nil {
			return err
		}

		if uri == "" {
			continue
		}

		datasets.Delete(uri)
	}

	reloadDatasets()

	return nil
}

// datasetUri normalizes the uri and returns empty for documents that are not datasets.
func datasetUri(uri Uri) (Uri, error) {
	if datasets == nil || root == nil {
		return "", errNotInitialized
	}

	if !IsDatasetUri(uri) {
		return "", nil
	}

	return NormalizeUri(uri)
}

func reloadDatasets() {
	if datasets == nil || root == nil {
		return
	}

	if updateDatasets() {
		Reload()
	}
}
