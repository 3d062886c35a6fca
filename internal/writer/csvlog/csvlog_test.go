// internal/writer/csvlog/csvlog_test.go
package csvlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

func lines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func night() tristar.Measurement {
	return tristar.Measurement{
		BatteryVoltage: 12.8,
		BatteryCurrent: 0,
		PowerIn:        0,
		AmpHours:       45.6,
		State:          tristar.StateNight,
	}
}

func TestSampleLogCreatesHeaderAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	log, _ := logtest.NewNullLogger()
	s := NewSampleLog(path, log)

	at := time.Date(2024, 5, 2, 21, 7, 42, 0, time.Local)
	require.NoError(t, s.Write(at, night()))

	m := night()
	m.BatteryVoltage = 12.79
	require.NoError(t, s.Write(at.Add(30*time.Second), m))

	assert.Equal(t, []string{
		"Time,Bat V,Bat I,Pwr In,AHr,State",
		"2024-05-02 21:07,12.80,0.00,0.00,45.60,Night",
		"2024-05-02 21:08,12.79,0.00,0.00,45.60,Night",
	}, lines(t, path))
}

func TestSampleLogSuppressesDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	log, _ := logtest.NewNullLogger()
	s := NewSampleLog(path, log)

	at := time.Date(2024, 5, 2, 1, 0, 0, 0, time.Local)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Write(at.Add(time.Duration(i)*time.Minute), night()))
	}

	got := lines(t, path)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-02 01:00,12.80,0.00,0.00,45.60,Night", got[1])
}

func TestSampleLogNeverWritesConsecutiveDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	log, _ := logtest.NewNullLogger()
	s := NewSampleLog(path, log)

	volts := []float64{12.8, 12.8, 12.81, 12.81, 12.8, 12.8, 12.8, 13}
	at := time.Date(2024, 5, 2, 6, 0, 0, 0, time.Local)
	for i, v := range volts {
		m := night()
		m.BatteryVoltage = v
		require.NoError(t, s.Write(at.Add(time.Duration(i)*time.Minute), m))
	}

	rows := lines(t, path)[1:]
	require.Len(t, rows, 4)
	for i := 1; i < len(rows); i++ {
		prev := rows[i-1][strings.Index(rows[i-1], ",")+1:]
		cur := rows[i][strings.Index(rows[i], ",")+1:]
		assert.NotEqual(t, prev, cur)
	}
}

func TestSampleLogRetriesAfterFailedWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "data.csv")
	log, _ := logtest.NewNullLogger()
	s := NewSampleLog(path, log)

	at := time.Date(2024, 5, 2, 1, 0, 0, 0, time.Local)
	require.Error(t, s.Write(at, night()))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "missing"), 0o755))
	require.NoError(t, s.Write(at.Add(time.Minute), night()))

	assert.Len(t, lines(t, path), 2)
}

func TestSampleLogRecreatesDeletedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	log, _ := logtest.NewNullLogger()
	s := NewSampleLog(path, log)

	at := time.Date(2024, 5, 2, 1, 0, 0, 0, time.Local)
	require.NoError(t, s.Write(at, night()))
	require.NoError(t, os.Remove(path))

	m := night()
	m.State = tristar.StateNightCheck
	require.NoError(t, s.Write(at.Add(time.Minute), m))

	assert.Equal(t, []string{
		"Time,Bat V,Bat I,Pwr In,AHr,State",
		"2024-05-02 01:01,12.80,0.00,0.00,45.60,Night Check",
	}, lines(t, path))
}

func TestDailyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	d := NewDailyLog(path)

	m := tristar.Measurement{
		BatteryVoltageMin: 12.41,
		BatteryVoltageMax: 14.62,
		AmpHours:          88.3,
		WattHours:         1190,
		AbsorbTemp:        25,
		EqualizeTemp:      25,
		FloatTemp:         24,
	}
	at := time.Date(2024, 5, 2, 23, 55, 10, 0, time.Local)
	require.NoError(t, d.Write(at, m))
	require.NoError(t, d.Write(at.Add(24*time.Hour), m))

	assert.Equal(t, []string{
		"Date-Time,Bat V max,Bat V min,AHr,WHr,Abs T,Equ T,Flt T",
		"2024-05-02 23:55,12.41,14.62,88.30,1190.00,25.00,25.00,24.00",
		"2024-05-03 23:55,12.41,14.62,88.30,1190.00,25.00,25.00,24.00",
	}, lines(t, path))
}
