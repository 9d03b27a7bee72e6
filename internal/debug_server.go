package internal

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	pb "pingly/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

// Badger key/value inspector, useful while developing. Exposed only
// when the log level is DEBUG.

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Namespace string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow

type PageData struct {
	Prefix string
	Items  []InspectRow
}

const inspectTemplate = `<!DOCTYPE html>
<html>
<head><title>Badger Inspector</title>
<style>
body { font-family: monospace; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h2>Prefix: {{.Prefix}}</h2>
<table>
<tr><th>Key</th><th>Type</th><th>Timestamp</th><th>Entity</th><th>Namespace</th><th>Detail</th></tr>
{{range .Items}}
<tr><td>{{.Key}}</td><td>{{.Type}}</td><td>{{.Timestamp}}</td><td>{{.EntityID}}</td><td>{{.Namespace}}</td><td>{{.Detail}}</td></tr>
{{end}}
</table>
</body>
</html>`

func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.New("inspect").Parse(inspectTemplate))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "msg:"
		}

		data := PageData{Prefix: prefix}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// DefaultMapper decodes the pingly key namespaces: msg:, inbox:,
// profile: and user:. Unknown values render as raw byte sizes.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: "default",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	if len(parts) > 1 {
		row.Namespace = parts[0]
	}

	switch parts[0] {
	case "msg", "inbox":
		var p pb.StoredMessage
		if err := proto.Unmarshal(val, &p); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "MESSAGE"
		row.Timestamp = time.Unix(0, p.At).UTC().Format("15:04:05")
		row.EntityID = shorten(p.Id)
		row.Detail = fmt.Sprintf("%s -> %s: %s", shorten(p.SenderId), shorten(p.ReceiverId), p.Content)
	case "profile":
		var p pb.StoredProfile
		if err := proto.Unmarshal(val, &p); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "PROFILE"
		row.EntityID = shorten(p.Id)
		row.Detail = fmt.Sprintf("%s <%s>", p.Username, p.Email)
	case "user":
		row.Type = "ACCOUNT"
		if len(parts) > 1 {
			row.EntityID = parts[1]
		}
		row.Detail = "credentials (redacted)"
	}
	return row
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
