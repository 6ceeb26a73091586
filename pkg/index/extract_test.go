package index

import "testing"

func TestRegexExtractor_DocumentOrder(t *testing.T) {
	page := `<html><body>
<a href="/packages/foo-1.0-py3-none-any.whl#sha256=abc">foo-1.0-py3-none-any.whl</a><br/>
<a href="/packages/foo-1.0.tar.gz">foo-1.0.tar.gz</a><br/>
<a href="https://files.example/foo-2.0-py3-none-any.whl">foo-2.0-py3-none-any.whl</a>
</body></html>`

	links := RegexExtractor{}.Links(page)
	if len(links) != 3 {
		t.Fatalf("got %d links, want 3", len(links))
	}

	want := []Link{
		{Href: "/packages/foo-1.0-py3-none-any.whl#sha256=abc", Label: "foo-1.0-py3-none-any.whl"},
		{Href: "/packages/foo-1.0.tar.gz", Label: "foo-1.0.tar.gz"},
		{Href: "https://files.example/foo-2.0-py3-none-any.whl", Label: "foo-2.0-py3-none-any.whl"},
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("link %d = %+v, want %+v", i, links[i], want[i])
		}
	}
}

func TestRegexExtractor_ToleratesVariation(t *testing.T) {
	tests := []struct {
		name string
		page string
		want int
	}{
		{
			name: "extra attributes before href",
			page: `<a data-requires-python=">=3.8" href="/x/a.whl">a.whl</a>`,
			want: 1,
		},
		{
			name: "attributes after href",
			page: `<a href="/x/a.whl" rel="internal">a.whl</a>`,
			want: 1,
		},
		{
			name: "single quotes",
			page: `<a href='/x/a.whl'>a.whl</a>`,
			want: 1,
		},
		{
			name: "upper-case tag",
			page: `<A HREF="/x/a.whl">a.whl</A>`,
			want: 1,
		},
		{
			name: "label whitespace trimmed",
			page: "<a href=\"/x/a.whl\">\n  a.whl\n</a>",
			want: 1,
		},
		{
			name: "no anchors",
			page: `<html><p>nothing here</p></html>`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := RegexExtractor{}.Links(tt.page)
			if len(links) != tt.want {
				t.Fatalf("got %d links, want %d", len(links), tt.want)
			}
			if tt.want == 1 && links[0].Label != "a.whl" {
				t.Errorf("Label = %q, want a.whl", links[0].Label)
			}
		})
	}
}
