package constants

import "os"

func GetDataDir() string {
	path := os.Getenv("SGT_DATA_PATH")
	if path != "" {
		return path
	}
	return "./data"
}

func GetDBPath() string {
	path := os.Getenv("SGT_DB_PATH")
	if path != "" {
		return path
	}
	return GetDataDir() + "/tabs.db"
}

func GetPort() string {
	port := os.Getenv("SGT_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DebounceMillis is how long the midi listener waits after the last
// note before trying to name what is held down.
const DebounceMillis = 150
