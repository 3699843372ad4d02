package utils

import (
	"encoding/json"
	"strconv"

	log "github.com/sirupsen/logrus"
)

func IntFromString(s string, defaultValue int) int {
	atoi, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return atoi
}

func ToJson(value any) []byte {
	jsonResp, err := json.Marshal(value)
	if err != nil {
		log.Errorf("Error happened in JSON marshal. Err: %s", err)
	}
	return jsonResp
}

// Recoverer restarts f after a panic, up to maxPanics times.
func Recoverer(maxPanics, id int, f func()) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("Recovered task %v: %v", id, err)
			if maxPanics == 0 {
				panic("too many panics")
			} else {
				go Recoverer(maxPanics-1, id, f)
			}
		}
	}()
	f()
}
