package domain

// RoomCategory is a room class. Categories group rooms into bands on the
// board; membership is derived from the numeric room id, matching the
// hotel's fixed numbering plan.
type RoomCategory string

const (
	CategorySimples RoomCategory = "SIMPLES"
	CategoryDuplo   RoomCategory = "DUPLO"
	CategoryTriplo  RoomCategory = "TRIPLO"
	CategoryDeluxe  RoomCategory = "DELUXE"
	CategoryMaster  RoomCategory = "MASTER"
)

// CategoryForRoom derives the category from the room id.
// 1-5 SIMPLES, 6-10 DUPLO, 11-15 TRIPLO, 16-20 DELUXE, 21+ MASTER.
func CategoryForRoom(id int64) RoomCategory {
	switch {
	case id <= 5:
		return CategorySimples
	case id <= 10:
		return CategoryDuplo
	case id <= 15:
		return CategoryTriplo
	case id <= 20:
		return CategoryDeluxe
	default:
		return CategoryMaster
	}
}

// Room is a bookable room. The list is static: the reservation flow never
// creates or mutates rooms.
type Room struct {
	ID   int64
	Name string // display number, e.g. "101"
}

// Category returns the room's category.
func (r Room) Category() RoomCategory {
	return CategoryForRoom(r.ID)
}
