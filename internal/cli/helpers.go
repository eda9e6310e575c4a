package cli

import "time"

func today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func previousDay() time.Time {
	return today().AddDate(0, 0, -1)
}
