package export

import "strings"

// ResumeFilename builds the resume download name from the candidate's name.
// Missing name parts fall back to placeholder words so the filename stays
// well formed.
func ResumeFilename(firstName, lastName string) string {
	first := sanitizeNamePart(firstName)
	if first == "" {
		first = "Resume"
	}
	last := sanitizeNamePart(lastName)
	if last == "" {
		last = "Document"
	}
	return first + "_" + last + "_Resume.pdf"
}

// CoverLetterFilename builds the cover letter download name from the target
// company.
func CoverLetterFilename(companyName string) string {
	company := sanitizeNamePart(companyName)
	if company == "" {
		company = "Company"
	}
	return company + "_Cover_Letter.pdf"
}

// CoverLetterTextFilename is the plain-text variant of the cover letter
// download name.
func CoverLetterTextFilename(companyName string) string {
	return strings.TrimSuffix(CoverLetterFilename(companyName), ".pdf") + ".txt"
}

// sanitizeNamePart trims whitespace and strips characters that would break
// a filename or a Content-Disposition header.
func sanitizeNamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		"\"", "",
		"\n", " ",
		"\r", " ",
	)
	return replacer.Replace(s)
}
