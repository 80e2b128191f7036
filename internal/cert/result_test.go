package cert

import "testing"

func TestSummarizeStatus(t *testing.T) {
	cases := []struct {
		name  string
		files []FileResult
		want  Status
	}{
		{"no files", nil, StatusUnsigned},
		{"all valid", []FileResult{{Status: FileStatusValid}, {Status: FileStatusValid}}, StatusValid},
		{"all invalid", []FileResult{{Status: FileStatusInvalid}, {Status: FileStatusNotHaveData}}, StatusInvalid},
		{"mixed", []FileResult{{Status: FileStatusValid}, {Status: FileStatusInvalid}}, StatusPartiallyValid},
	}
	for _, c := range cases {
		if got := summarize(c.files); got != c.want {
			t.Errorf("%s: summarize() = %v, want %v", c.name, got, c.want)
		}
	}
}
