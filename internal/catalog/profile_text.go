package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hireloop/talent-matcher/internal/skills"
)

var (
	newlineRun    = regexp.MustCompile(`\n+`)
	spaceRun      = regexp.MustCompile(`\s+`)
	yearSpan      = regexp.MustCompile(`\((\d{4})-(\d{4})\)`)
	yearsPhrase   = regexp.MustCompile(`(\d+)\s*years?\s*(of\s*)?(experience|exp)`)
	fourDigitYear = regexp.MustCompile(`\d{4}`)
	skillSplit    = regexp.MustCompile(`[,;]`)
)

var skillsHeadings = []string{"SKILLS:", "TECHNICAL SKILLS:", "TECHNOLOGIES:"}

// ProfileFromText builds a candidate profile from raw resume text. It cleans
// extraction artifacts, guesses the candidate name, collects skills from an
// explicit skills section and from the known vocabulary, and estimates
// experience years from date spans and "N years" phrases. File-format
// handling (PDF/DOCX) is the caller's problem; this only sees text.
func ProfileFromText(resumeText string) *CandidateProfile {
	cleaned := cleanResumeText(resumeText)

	found := make(map[string]bool)
	collectSectionSkills(resumeText, found)
	for _, skill := range skills.Extract(resumeText) {
		found[skills.Normalize(skill)] = true
	}

	list := make([]string, 0, len(found))
	for skill := range found {
		list = append(list, skill)
	}
	sort.Strings(list)

	return &CandidateProfile{
		Name:            extractName(cleaned),
		Skills:          list,
		ExperienceYears: extractExperienceYears(resumeText),
		ResumeText:      resumeText,
	}
}

// cleanResumeText collapses whitespace and strips common PDF artifacts such
// as stray pipe separators.
func cleanResumeText(text string) string {
	cleaned := newlineRun.ReplaceAllString(text, " ")
	cleaned = strings.ReplaceAll(cleaned, "|", " ")
	cleaned = spaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func collectSectionSkills(text string, into map[string]bool) {
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		upper := strings.ToUpper(line)

		heading := false
		for _, h := range skillsHeadings {
			if strings.Contains(upper, h) {
				heading = true
				break
			}
		}

		switch {
		case heading:
			inSection = true
			if idx := strings.Index(line, ":"); idx >= 0 {
				addSplitSkills(line[idx+1:], into)
			}
		case inSection && strings.TrimSpace(line) != "":
			if strings.HasPrefix(line, " ") || strings.ContainsAny(line, ",;") {
				addSplitSkills(line, into)
			} else {
				inSection = false
			}
		}
	}
}

func addSplitSkills(text string, into map[string]bool) {
	for _, part := range skillSplit.Split(text, -1) {
		skill := skills.Normalize(part)
		if skill != "" {
			into[skill] = true
		}
	}
}

func extractName(cleaned string) string {
	words := strings.Fields(cleaned)
	if len(words) > 20 {
		words = words[:20]
	}

	var name []string
	for _, word := range words {
		trimmed := strings.Trim(word, ".,")
		if len(trimmed) > 1 && isTitleWord(trimmed) {
			name = append(name, trimmed)
			if len(name) == 2 {
				return strings.Join(name, " ")
			}
		}
	}

	return "Unknown Candidate"
}

func isTitleWord(word string) bool {
	for i, r := range word {
		if i == 0 {
			if r < 'A' || r > 'Z' {
				return false
			}
			continue
		}
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func extractExperienceYears(text string) int {
	years := 0

	for _, m := range yearSpan.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if end-start > years {
			years = end - start
		}
	}

	for _, m := range yearsPhrase.FindAllStringSubmatch(strings.ToLower(text), -1) {
		n, _ := strconv.Atoi(m[1])
		if n > years {
			years = n
		}
	}

	// Sum individual job durations as a third signal.
	total := 0
	for _, line := range strings.Split(text, "\n") {
		found := fourDigitYear.FindAllString(line, -1)
		if len(found) < 2 {
			continue
		}
		first, _ := strconv.Atoi(found[0])
		last, _ := strconv.Atoi(found[len(found)-1])
		if d := last - first; d > 0 && d <= 20 {
			total += d
		}
	}
	if total > years {
		years = total
	}

	return years
}
