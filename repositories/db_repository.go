package repositories

// RosterDbRepository carries every query against the roster database. It is
// stateless; executors are passed per call.
type RosterDbRepository struct{}

func NewRosterDbRepository() *RosterDbRepository {
	return &RosterDbRepository{}
}
