package collect

import "time"

// Summary describes what a run wrote.
type Summary struct {
	OutputPath   string        // Absolute path of the artifact.
	Included     int           // Files written with their content.
	Failed       int           // Files written as ERROR READING blocks.
	Skipped      int           // Files dropped by extension or name.
	Pruned       int           // Directories never descended into.
	BytesWritten int64         // Size of the artifact.
	Elapsed      time.Duration // Wall time of the run.
}
