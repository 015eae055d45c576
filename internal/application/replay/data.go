package replay

// FrameInput records the released keys for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	U bool `json:"u,omitempty"` // Up released
	D bool `json:"d,omitempty"` // Down released
	L bool `json:"l,omitempty"` // Left released
	R bool `json:"r,omitempty"` // Right released
	P bool `json:"p,omitempty"` // Paused (no tick ran)
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
