package entity

// Cell is either empty or owned by exactly one player. The zero value is an empty cell.
type Cell struct {
	owner Player
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// OwnedBy returns a cell owned by the given player. An invalid player yields an empty cell.
func OwnedBy(player Player) Cell {
	if !player.Valid() {
		return Empty
	}
	return Cell{owner: player}
}

func (that Cell) IsEmpty() bool {
	return that.owner == 0
}

// Owner returns the owning player and false when the cell is empty.
func (that Cell) Owner() (Player, bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return that.owner, true
}

func (that Cell) IsOwnedBy(player Player) bool {
	return !that.IsEmpty() && that.owner == player
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return emptyMark
	}
	return that.owner.Mark()
}
