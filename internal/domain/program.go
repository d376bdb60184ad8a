package domain

// ReadyProgram is a curated, ready-made trip from GET /api/readyprogram.
type ReadyProgram struct {
	ID        string        `json:"_id"`
	Program   string        `json:"program"`
	Location  string        `json:"location"`
	TypeTrip  string        `json:"type_trip"`
	Budget    float64       `json:"budget"`
	PersonNum int           `json:"person_num"`
	Rate      float64       `json:"rate"`
	Images    ProgramImages `json:"images"`
}

// ProgramImages holds the four gallery images of a ready program.
type ProgramImages struct {
	Src1 string `json:"src1,omitempty"`
	Src2 string `json:"src2,omitempty"`
	Src3 string `json:"src3,omitempty"`
	Src4 string `json:"src4,omitempty"`
}

// Category is a landing-screen category card from GET /api/home.
type Category struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// Home is the combined catalog shown on the landing screen.
type Home struct {
	Categories []Category     `json:"categories"`
	Places     []Place        `json:"places"`
	Programs   []ReadyProgram `json:"programs"`
}
