// Package proto holds the wire and storage schema definitions.
// Generated code lands in per-package subdirectories (chat/, account/,
// storage/) and is not committed; run `go generate ./proto` after
// installing protoc with protoc-gen-go and protoc-gen-go-grpc.
package proto

//go:generate protoc --go_out=.. --go-grpc_out=.. chat.proto
//go:generate protoc --go_out=.. --go-grpc_out=.. account.proto
//go:generate protoc --go_out=.. storage.proto
