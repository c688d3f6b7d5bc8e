package report

import "strings"

// Link is one platform search entry.
type Link struct {
	Platform string
	URL      string
}

// SearchLinks builds the six platform search URLs for a display number.
// Path segments use the number with every '+' removed; query parameters
// percent-encode '+' and turn spaces into '+'.
func SearchLinks(display string) []Link {
	bare := strings.ReplaceAll(display, "+", "")
	query := strings.ReplaceAll(strings.ReplaceAll(display, "+", "%2B"), " ", "+")

	return []Link{
		{Platform: "Google", URL: "https://www.google.com/search?q=" + query},
		{Platform: "TrueCaller", URL: "https://www.truecaller.com/search/in/" + bare},
		{Platform: "Facebook", URL: "https://www.facebook.com/search/top/?q=" + query},
		{Platform: "LinkedIn", URL: "https://www.linkedin.com/search/results/all/?keywords=" + query},
		{Platform: "Twitter (X)", URL: "https://twitter.com/search?q=" + query},
		{Platform: "Instagram (Tag)", URL: "https://www.instagram.com/explore/tags/" + bare},
	}
}
