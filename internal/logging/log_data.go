package logging

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects fields and timings over one console command and emits
// them as a single entry. Commands run one at a time so there is no locking.
type LogData struct {
	timeItems map[string]int64
	dataItems logrus.Fields
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItems: make(map[string]int64),
		dataItems: make(logrus.Fields),
		logger:    logger,
	}
}

// AddTiming starts a timer; calling the returned func records the elapsed
// milliseconds under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		l.timeItems[entryName] = time.Since(startTime).Milliseconds()
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger).WithFields(l.dataItems)

	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}

	return entry
}
