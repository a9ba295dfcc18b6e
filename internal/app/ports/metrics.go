package ports

import "quackmate/internal/domain/pet"

type ActionMetrics interface {
	RecordApplied(action string)
	RecordDeclined(action string, code pet.Decline)
	RecordConflict()
	RecordFailure()
}
