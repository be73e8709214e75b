package sqlconn

import (
	"fmt"
	"strconv"
	"strings"
)

var mysqlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
)

// Quote escapes a scalar for embedding into literal SQL text, MySQL style.
// nil becomes NULL, numbers stay bare, everything else is escaped and wrapped
// in single quotes.
func (c *Conn) Quote(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return "'" + mysqlEscaper.Replace(x) + "'"
	case []byte:
		return "'" + mysqlEscaper.Replace(string(x)) + "'"
	default:
		return "'" + mysqlEscaper.Replace(fmt.Sprintf("%v", x)) + "'"
	}
}
