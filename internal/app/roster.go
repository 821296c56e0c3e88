package app

type RosterImportResult struct {
	ClientCount   int
	UserCount     int
	DocumentCount int
}
