package services

// MatchPublisher рассылает события матчей подписчикам. Реализуется feed.Hub.
type MatchPublisher interface {
	PublishMatch(matchID, gameID int, messageType string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) PublishMatch(int, int, string, interface{}) {}

func publisherOrNoop(p MatchPublisher) MatchPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
