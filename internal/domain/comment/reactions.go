package comment

// ReactionSummary is the per-emoji aggregate shown on a comment.
type ReactionSummary struct {
	Count     int  `json:"count"`
	ReactedBy bool `json:"reacted_by_current_user"`
}

// AggregateReactions groups a comment's raw reaction records into per-emoji
// counts, flagging the emoji the current user has reacted with. Pure; the
// input is never modified.
func AggregateReactions(reactions []Reaction, currentUserID string) map[string]ReactionSummary {
	out := make(map[string]ReactionSummary, len(reactions))
	for _, r := range reactions {
		s := out[r.Emoji]
		s.Count++
		if r.UserID == currentUserID {
			s.ReactedBy = true
		}
		out[r.Emoji] = s
	}
	return out
}
