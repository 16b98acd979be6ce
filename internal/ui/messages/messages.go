package messages

// ClearStatusMsg czyści status o danym numerze, o ile nie został już nadpisany
type ClearStatusMsg struct {
	ID int
}
