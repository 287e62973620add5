package agent

import (
	"regexp"
	"strconv"
	"strings"
)

var topNPattern = regexp.MustCompile(`\btop[\s-]+([0-9]+|[a-z]+)\b`)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

// ExtractTopN finds a "top N" request in the question, e.g. "top 5" or "top five".
func ExtractTopN(question string) (int, bool) {
	match := topNPattern.FindStringSubmatch(strings.ToLower(question))
	if match == nil {
		return 0, false
	}
	token := match[1]
	if n, err := strconv.Atoi(token); err == nil {
		return n, n > 0
	}
	n, ok := numberWords[token]
	return n, ok
}
