package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"

	pb "pingly/proto/storage"
)

// badger_inspect dumps a key range of the server store as a table.
// Useful to eyeball the message and profile layout without booting
// the debug HTTP inspector.
func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	// Default to the primary message rows; inbox: copies hold the same
	// payloads and only differ by key.
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("Missing -db flag")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "ID", "Sender", "Receiver", "At", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				row, ok := decode(key, v)
				if !ok {
					// Log the bad row and keep scanning instead of aborting
					fmt.Printf("Error unmarshaling key %s\n", key)
					return nil
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}

func decode(key string, value []byte) ([]string, bool) {
	switch {
	case strings.HasPrefix(key, "msg:") || strings.HasPrefix(key, "inbox:"):
		var m pb.StoredMessage
		if err := proto.Unmarshal(value, &m); err != nil {
			return nil, false
		}
		at := time.Unix(0, m.At).UTC().Format(time.RFC3339)
		return []string{key, m.Id, m.SenderId, m.ReceiverId, at, m.Content}, true
	case strings.HasPrefix(key, "profile:"):
		var p pb.StoredProfile
		if err := proto.Unmarshal(value, &p); err != nil {
			return nil, false
		}
		return []string{key, p.Id, p.Username, p.Email, "", ""}, true
	default:
		// Credentials and anything unknown stay opaque.
		return []string{key, "", "", "", "", fmt.Sprintf("(%d bytes)", len(value))}, true
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLoggingLevel(badger.ERROR).
		WithReadOnly(true).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
