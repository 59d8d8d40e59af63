package console

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/renato0307/gitdu/internal/domain"
)

// WriteCommitLine writes "<timestamp> <commit-id> <total-bytes>\n" to w
func WriteCommitLine(w io.Writer, cs domain.CommitSize) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = strconv.AppendInt(buf.B, cs.Commit.Timestamp, 10)
	buf.WriteByte(' ')
	buf.WriteString(string(cs.Commit.ID))
	buf.WriteByte(' ')
	buf.B = strconv.AppendInt(buf.B, cs.Size.Total(), 10)
	buf.WriteByte('\n')

	_, err := w.Write(buf.B)
	return err
}
