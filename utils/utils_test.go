package utils

import "testing"

func TestToUri(t *testing.T) {
	list := []struct {
		In  string
		Out string
	}{
		{"/home/test/a.family.json", "file:///home/test/a.family.json"},
		{"file:///home/test/a.family.json", "file:///home/test/a.family.json"},
	}

	for _, item := range list {
		uri, err := NormalizeUri(item.In)

		if err != nil {
			t.Errorf("NormalizeUri(%s): %v", item.In, err)
			continue
		}

		if uri != item.Out {
			t.Errorf("NormalizeUri(%s) = %s, expect %s", item.In, uri, item.Out)
		}
	}
}

func TestIsDatasetUri(t *testing.T) {
	if !IsDatasetUri("file:///root/Cohen.FAMILY.json") {
		t.Error("expected dataset uri")
	}

	if IsDatasetUri("file:///root/notes.json") {
		t.Error("plain json is not a dataset")
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Moshe COHEN", "cohen") {
		t.Error("expected case-insensitive match")
	}

	if ContainsFold("Levi", "cohen") {
		t.Error("unexpected match")
	}

	if !AnyContains([]string{"a", "Rabbi"}, func(s string) bool { return ContainsFold(s, "rab") }) {
		t.Error("AnyContains should match second item")
	}
}
