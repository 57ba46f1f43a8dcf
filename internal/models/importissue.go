package models

// IssueType classifies a validation finding. Errors block confirming an
// import batch; warnings are advisory only.
type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
)

// ImportIssue is one validation finding from the import pipeline. Issues are
// data, not exceptions: they never mutate candidates and flow back to the
// operator as part of the preview.
type ImportIssue struct {
	Row     int       `json:"row"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Type    IssueType `json:"type"`
}

// ImportPreview is the transient result of one import batch, consumed exactly
// once by a confirm/cancel decision.
type ImportPreview struct {
	Players []Player      `json:"players"`
	Issues  []ImportIssue `json:"issues"`
}

// HasErrors reports whether any error-typed issue is present.
func (p ImportPreview) HasErrors() bool {
	for _, issue := range p.Issues {
		if issue.Type == IssueError {
			return true
		}
	}
	return false
}

// Empty reports whether the batch produced neither candidates nor issues,
// which callers treat as "headers unrecognized".
func (p ImportPreview) Empty() bool {
	return len(p.Players) == 0 && len(p.Issues) == 0
}
