package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"eccli/models"
)

var (
	sampleRe         = regexp.MustCompile(`(?s)<pre class="note">(.*?)</pre>`)
	expectedAnswerRe = regexp.MustCompile(`<pre>\s*<b>([^<]+)</b>\s*</pre>`)
)

// ExtractSamples returns the example blocks of a description part, the
// contents of its <pre class="note"> tags. Leading whitespace is
// stripped; trailing whitespace belongs to the sample.
func ExtractSamples(markup string) []string {
	matches := sampleRe.FindAllStringSubmatch(markup, -1)
	samples := make([]string, 0, len(matches))
	for _, match := range matches {
		samples = append(samples, strings.TrimLeftFunc(match[1], unicode.IsSpace))
	}
	return samples
}

// ExtractExpectedAnswer returns the sample answer of a description
// part. The last <pre><b>…</b></pre> occurrence wins, it closes the
// example walkthrough.
func ExtractExpectedAnswer(markup string) (string, bool) {
	matches := expectedAnswerRe.FindAllStringSubmatch(markup, -1)
	if len(matches) == 0 {
		return "", false
	}
	return strings.TrimSpace(matches[len(matches)-1][1]), true
}

// PartBanner renders the separator placed before a later part's text
// in a combined description.
func PartBanner(part int) string {
	rule := strings.Repeat("=", 80)
	return fmt.Sprintf("\n\n%s\n PART %d \n%s\n\n", rule, part, rule)
}

// DescriptionParts reports how many quest parts a combined description
// holds. Part 1 never carries a banner.
func DescriptionParts(description string) int {
	return 1 +
		strings.Count(description, " PART 2 ") +
		strings.Count(description, " PART 3 ")
}

// SplitParts cuts a combined description at its part banners. Parts
// not present come back empty.
func SplitParts(description string) (part1, part2, part3 string) {
	part1, rest, found := strings.Cut(description, "PART 2")
	if !found {
		return description, "", ""
	}
	part2, part3, _ = strings.Cut(rest, "PART 3")
	return part1, part2, part3
}

// FormatSubmitResponse renders the server's verdict for the terminal.
func FormatSubmitResponse(resp *models.SubmitResponse) string {
	var output strings.Builder

	if resp.Correct {
		output.WriteString("✓ Correct!\n")

		if resp.FirstCorrect {
			output.WriteString("  🎉 First to solve!\n")
		}

		fmt.Fprintf(&output, "  Global place: %d\n", resp.GlobalPlace)
		fmt.Fprintf(&output, "  Global score: %d\n", resp.GlobalScore)
		fmt.Fprintf(&output, "  Time: %dms\n", resp.Time)
	} else {
		output.WriteString("✗ Incorrect\n")

		if resp.LengthCorrect {
			output.WriteString("  (Answer length is correct)\n")
		}
	}

	if resp.Message != "" {
		fmt.Fprintf(&output, "  Message: %s\n", resp.Message)
	}

	return output.String()
}
