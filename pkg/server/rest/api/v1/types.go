package api

type Bottle struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Domaine     *string  `json:"domaine"`
	Country     *string  `json:"country"`
	Year        *int     `json:"year"`
	Type        *string  `json:"type"`
	Region      *string  `json:"region"`
	Cepage      *string  `json:"cepage"`
	Alcohol     *float64 `json:"alcohol"`
	Size        string   `json:"size"`
	ApogeeStart *int     `json:"apogee_start"`
	ApogeeEnd   *int     `json:"apogee_end"`
	BuyLink     *string  `json:"buy_link"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Rating      *int     `json:"rating"`
	Tags        *string  `json:"tags"`
	IsFavorite  bool     `json:"is_favorite"`
	ImagePath   *string  `json:"image_path"`
}

type BottleWithPositions struct {
	Bottle
	Positions []PlacedPosition `json:"positions"`
}

// BottleInput is the body of create and full update. Absent optional fields
// take their defaults.
type BottleInput struct {
	Name        string   `json:"name" binding:"required"`
	Domaine     *string  `json:"domaine"`
	Country     *string  `json:"country"`
	Year        *int     `json:"year"`
	Type        *string  `json:"type"`
	Region      *string  `json:"region"`
	Cepage      *string  `json:"cepage"`
	Alcohol     *float64 `json:"alcohol"`
	Size        *string  `json:"size"`
	ApogeeStart *int     `json:"apogee_start"`
	ApogeeEnd   *int     `json:"apogee_end"`
	BuyLink     *string  `json:"buy_link"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Rating      *int     `json:"rating"`
	Tags        *string  `json:"tags"`
	IsFavorite  *bool    `json:"is_favorite"`
	ImagePath   *string  `json:"image_path"`
}

// BottlePatch only overwrites the fields present and non-null in the body.
type BottlePatch struct {
	Name        *string  `json:"name"`
	Domaine     *string  `json:"domaine"`
	Country     *string  `json:"country"`
	Year        *int     `json:"year"`
	Type        *string  `json:"type"`
	Region      *string  `json:"region"`
	Cepage      *string  `json:"cepage"`
	Alcohol     *float64 `json:"alcohol"`
	Size        *string  `json:"size"`
	ApogeeStart *int     `json:"apogee_start"`
	ApogeeEnd   *int     `json:"apogee_end"`
	BuyLink     *string  `json:"buy_link"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Rating      *int     `json:"rating"`
	Tags        *string  `json:"tags"`
	IsFavorite  *bool    `json:"is_favorite"`
	ImagePath   *string  `json:"image_path"`
}

type BottleSummary struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Year      *int    `json:"year"`
	Domaine   *string `json:"domaine"`
	Quantity  int     `json:"quantity"`
	ImagePath *string `json:"image_path,omitempty"`
}

type SearchResponse struct {
	Results []BottleSummary `json:"results"`
}

type DuplicatesResponse struct {
	Duplicates []BottleSummary `json:"duplicates"`
}

// PlacedPosition is a slot holding a bottle, located in its cave hierarchy.
type PlacedPosition struct {
	ID         uint   `json:"id"`
	Line       int    `json:"line"`
	Position   int    `json:"position"`
	RowID      uint   `json:"row_id"`
	RowName    string `json:"row_name"`
	ColumnID   uint   `json:"column_id"`
	ColumnName string `json:"column_name"`
	CaveID     uint   `json:"cave_id"`
	CaveName   string `json:"cave_name"`
	Code       string `json:"code"`
}

type Position struct {
	ID               uint           `json:"id"`
	RowID            uint           `json:"row_id"`
	Line             int            `json:"line"`
	Position         int            `json:"position"`
	BottleID         *uint          `json:"bottle_id"`
	BottleAtPosition *BottleSummary `json:"bottle_at_position"`
}

type PositionInput struct {
	Line     int `json:"line" binding:"required,min=1"`
	Position int `json:"position" binding:"required,min=1"`
}

// AssignInput carries the bottle to put at a position; a null bottle_id
// empties the slot.
type AssignInput struct {
	BottleID *uint `json:"bottle_id"`
}

type Cave struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

type CaveInput struct {
	Name string `json:"name" binding:"required"`
}

type Column struct {
	ID     uint   `json:"id"`
	CaveID uint   `json:"cave_id"`
	Name   string `json:"name"`
	Order  int    `json:"order"`
	Rows   []Row  `json:"rows"`
}

type ColumnInput struct {
	Name  string `json:"name" binding:"required"`
	Order *int   `json:"order"`
}

type Row struct {
	ID             uint       `json:"id"`
	ColumnID       uint       `json:"column_id"`
	Name           string     `json:"name"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Order          int        `json:"order"`
	TotalPositions int        `json:"total_positions"`
	Positions      []Position `json:"positions"`
}

type RowInput struct {
	Name   string `json:"name" binding:"required"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
	Order  *int   `json:"order"`
}

type GeocodedRegion struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type GeocodedRegionInput struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required"`
	Lon  *float64 `json:"lon" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type UpdateProfileRequest struct {
	NewUsername string `json:"new_username"`
}

type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type AuthCheck struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type Message struct {
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
