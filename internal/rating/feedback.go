package rating

// Vote is the viewer's reaction to a single review.
type Vote struct {
	Good bool `json:"good"`
	Bad  bool `json:"bad"`
}

// Feedback holds good/bad votes keyed by rating ID. Good and bad are
// mutually exclusive. The zero value is ready to use; it is not safe for
// concurrent use.
type Feedback struct {
	votes map[string]Vote
}

// Good flips the good vote and clears bad.
func (f *Feedback) Good(ratingID string) Vote {
	v := Vote{Good: !f.votes[ratingID].Good}
	f.set(ratingID, v)
	return v
}

// Bad flips the bad vote and clears good.
func (f *Feedback) Bad(ratingID string) Vote {
	v := Vote{Bad: !f.votes[ratingID].Bad}
	f.set(ratingID, v)
	return v
}

// Get returns the current vote for ratingID.
func (f *Feedback) Get(ratingID string) Vote {
	return f.votes[ratingID]
}

func (f *Feedback) set(id string, v Vote) {
	if f.votes == nil {
		f.votes = make(map[string]Vote)
	}
	f.votes[id] = v
}
