package domain

type Passenger struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Label is the short form used in selection lists: "id | name".
func (p Passenger) Label() string {
	return p.ID + " | " + p.Name
}
