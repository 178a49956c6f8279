package connection

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespGameStarted struct {
	GameUuid string `json:"game_uuid"`
	GridSize int    `json:"grid_size"`
	Fleet    []int  `json:"fleet"`
}

type RespTurn struct {
	GameUuid string `json:"game_uuid"`
	Player   string `json:"player"`
}

type RespShot struct {
	GameUuid             string `json:"game_uuid"`
	Player               string `json:"player"`
	X                    int    `json:"x"`
	Y                    int    `json:"y"`
	Outcome              string `json:"outcome,omitempty"`
	FireAgain            bool   `json:"fire_again"`
	State                string `json:"state"`
	SunkenShipsHuman     int    `json:"sunken_ships_human"`
	SunkenShipsAutomated int    `json:"sunken_ships_automated"`
}

type RespEndGame struct {
	GameUuid             string `json:"game_uuid"`
	Winner               string `json:"winner"`
	State                string `json:"state"`
	SunkenShipsHuman     int    `json:"sunken_ships_human"`
	SunkenShipsAutomated int    `json:"sunken_ships_automated"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
