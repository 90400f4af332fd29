package sampler

// Budget bounds one sampling pass.
type Budget struct {
	MaxFiles   int // files sampled into the digest
	MaxChars   int // total snippet characters across the digest
	MaxDirs    int // directory listings issued (remote walk hardening)
	SnippetCap int // characters kept per file
}

// DefaultBudget returns the limits used for local and cloned trees.
func DefaultBudget() Budget {
	return Budget{MaxFiles: 30, MaxChars: 12000, MaxDirs: 50, SnippetCap: 800}
}

// RemoteBudget returns the limits used for the API walk, where every
// snippet costs a network round trip.
func RemoteBudget() Budget {
	b := DefaultBudget()
	b.SnippetCap = 500
	return b
}

// usage tracks consumption against a Budget. It is carried by value:
// each step returns an updated copy, which keeps the exhaustion checks
// pure predicates over an immutable snapshot.
type usage struct {
	files int
	chars int
	dirs  int
}

func (u usage) exhausted(b Budget) bool {
	return u.files >= b.MaxFiles || u.chars >= b.MaxChars
}

func (u usage) dirsExhausted(b Budget) bool {
	return b.MaxDirs > 0 && u.dirs >= b.MaxDirs
}

func (u usage) addFile(snippetLen int) usage {
	u.files++
	u.chars += snippetLen
	return u
}

func (u usage) addDir() usage {
	u.dirs++
	return u
}

// clamp truncates a snippet to the per-file cap and to whatever remains
// of the character budget, so the digest never exceeds MaxChars.
func (u usage) clamp(b Budget, snippet string) string {
	if b.SnippetCap > 0 && len(snippet) > b.SnippetCap {
		snippet = snippet[:b.SnippetCap]
	}
	if remaining := b.MaxChars - u.chars; len(snippet) > remaining {
		snippet = snippet[:remaining]
	}
	return snippet
}
