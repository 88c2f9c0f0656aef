package model

// Space is a static catalog entry describing a reservable physical
// resource (hall, room, cafe or studio).  Spaces are loaded at startup
// and never created or destroyed at runtime.
//
// Fields:
//  ID          – stable identifier referenced by reservations.
//  Name        – display name shown to members.
//  Description – short description of the space.
//  Capacity    – maximum number of occupants.
//  Category    – coarse classification tag (hall, room, cafe, studio).
//  Facilities  – free-form facility labels (projector, piano, ...).
//  ImageURL    – representative photo for listing views.
type Space struct {
    ID          string   `json:"id"`
    Name        string   `json:"name"`
    Description string   `json:"description"`
    Capacity    int      `json:"capacity"`
    Category    string   `json:"category"`
    Facilities  []string `json:"facilities"`
    ImageURL    string   `json:"imageUrl"`
}
