package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Scrub:
// - Line comments removed, newline kept
// - Block comments replaced by the newlines they contained
// - Line count preserved for multi-line block comments
// - Comment markers inside string/char literals left untouched
// - Escaped quotes do not terminate literals early
// - Unterminated block comment consumes the rest of the input
// - Scrubbing is idempotent

func TestScrub_LineComments(t *testing.T) {
	t.Parallel()

	src := "int x = 1; // counter\nint y = 2;\n"
	got := Scrub(src)

	assert.Equal(t, "int x = 1; \nint y = 2;\n", got)
	assert.Equal(t, strings.Count(src, "\n"), strings.Count(got, "\n"))
}

func TestScrub_BlockCommentPreservesLines(t *testing.T) {
	t.Parallel()

	src := "int a;\n/* first\n   second\n   third */\nint b;\n"
	got := Scrub(src)

	assert.Equal(t, strings.Count(src, "\n"), strings.Count(got, "\n"))
	assert.NotContains(t, got, "first")
	assert.Contains(t, got, "int a;")
	assert.Contains(t, got, "int b;")

	// int b; must still be on line 5.
	lines := strings.Split(got, "\n")
	assert.Equal(t, "int b;", lines[4])
}

func TestScrub_LiteralsUntouched(t *testing.T) {
	t.Parallel()

	src := `Serial.println("no // comment /* here */");` + "\n"
	got := Scrub(src)
	assert.Equal(t, src, got)

	src = `char c = '"'; char d = '\''; // trailing` + "\n"
	got = Scrub(src)
	assert.Equal(t, `char c = '"'; char d = '\''; `+"\n", got)
}

func TestScrub_EscapedQuoteInString(t *testing.T) {
	t.Parallel()

	src := `Serial.print("quote: \" and brace: {"); // cut` + "\n"
	got := Scrub(src)
	assert.Equal(t, `Serial.print("quote: \" and brace: {"); `+"\n", got)
}

func TestScrub_UnterminatedBlockComment(t *testing.T) {
	t.Parallel()

	src := "int a;\n/* runs\nto the end\nint b;"
	got := Scrub(src)

	assert.Contains(t, got, "int a;")
	assert.NotContains(t, got, "int b;")
	assert.Equal(t, strings.Count(src, "\n"), strings.Count(got, "\n"))
}

func TestScrub_Idempotent(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"void setup() {}\n",
		"/* a */ int x; // b\n",
		"char s[] = \"/* not a comment */\";\n",
		"/* unterminated\nint y;",
	}
	for _, src := range cases {
		once := Scrub(src)
		assert.Equal(t, once, Scrub(once), "scrub should be a no-op on scrubbed text: %q", src)
	}
}

func TestStripLineComments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int x; ", StripLineComments("int x; // note"))
	assert.Equal(t, "int  y;", StripLineComments("int /* mid */ y;"))
	assert.Equal(t, "int z; ", StripLineComments("int z; /* open"))
}
