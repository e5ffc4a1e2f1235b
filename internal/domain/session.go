package domain

import "fmt"

type Campus string

const (
	CampusMain      Campus = "main"
	CampusSecondary Campus = "secondary"
)

func (c Campus) Valid() bool {
	switch c {
	case CampusMain, CampusSecondary:
		return true
	default:
		return false
	}
}

// Label returns a display name for known campuses and the raw code otherwise.
func (c Campus) Label() string {
	switch c {
	case CampusMain:
		return "Main campus"
	case CampusSecondary:
		return "Secondary campus"
	default:
		return string(c)
	}
}

// Session is a named academic intake (term, campus, year) under which
// applicants are grouped. Owned by the backend; the client only selects one.
type Session struct {
	ID             int
	Name           string
	Campus         Campus
	Year           int
	ApplicantCount int
}

// SessionMeta is the display snapshot cached alongside the selected session id.
type SessionMeta struct {
	Name   string
	Campus Campus
	Year   int
}

func (s Session) Meta() SessionMeta {
	return SessionMeta{Name: s.Name, Campus: s.Campus, Year: s.Year}
}

func (m SessionMeta) String() string {
	return fmt.Sprintf("%s (%s, %d)", m.Name, m.Campus.Label(), m.Year)
}
