package logger

import (
	"bytes"
	"io"
	"sync/atomic"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type tag struct {
	text  string
	color lipgloss.Color
}

var (
	tagDebug   = tag{"[DEBUG]", "8"}
	tagInfo    = tag{"[INFO]", "12"}
	tagSuccess = tag{"[SUCCESS]", "10"}
	tagWarn    = tag{"[WARN]", "11"}
	tagError   = tag{"[ERROR]", "9"}
)

// formatter is called by logrus under the logger's lock.
type formatter struct {
	color     atomic.Bool
	timestamp atomic.Bool
	renderer  atomic.Pointer[lipgloss.Renderer]
}

func newFormatter(w io.Writer) *formatter {
	f := new(formatter)
	f.color.Store(true)
	f.timestamp.Store(true)
	f.setRenderer(w)
	return f
}

func (f *formatter) setRenderer(w io.Writer) {
	f.renderer.Store(lipgloss.NewRenderer(w))
}

func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := e.Buffer
	if b == nil {
		b = new(bytes.Buffer)
	}
	color := f.color.Load()
	re := f.renderer.Load()

	if f.timestamp.Load() {
		ts := e.Time.Format(time.DateTime)
		if color {
			ts = re.NewStyle().Foreground(tagDebug.color).Render(ts)
		}
		b.WriteString(ts)
		b.WriteByte(' ')
	}

	t := levelTag(e)
	if color {
		b.WriteString(re.NewStyle().Foreground(t.color).Render(t.text))
	} else {
		b.WriteString(t.text)
	}
	b.WriteByte(' ')

	if color {
		b.WriteString(e.Message)
	} else {
		b.WriteString(stripansi.Strip(e.Message))
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelTag(e *logrus.Entry) tag {
	switch e.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return tagDebug
	case logrus.InfoLevel:
		if ok, _ := e.Data[successKey].(bool); ok {
			return tagSuccess
		}
		return tagInfo
	case logrus.WarnLevel:
		return tagWarn
	default:
		return tagError
	}
}
