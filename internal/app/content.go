package app

import (
	"strings"
)

var loremWords = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do
eiusmod tempor incididunt ut labore et dolore magna aliqua ut enim ad minim veniam quis
nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat duis aute irure
dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur
excepteur sint occaecat cupidatat non proident sunt in culpa qui officia deserunt mollit anim
id est laborum`)

// SampleText returns n paragraphs of placeholder text. The output is the
// same for the same n.
func SampleText(paragraphs int) string {
	out := make([]string, 0, paragraphs)
	word := 0
	for p := range paragraphs {
		n := 40 + (p*17)%35
		words := make([]string, n)
		for i := range words {
			words[i] = loremWords[word%len(loremWords)]
			word += 1 + p%3
		}
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
		out = append(out, strings.Join(words, " ")+".")
	}
	return strings.Join(out, "\n\n")
}
