// Package proto contains the gRPC contracts for the retrieval sidecars
// (index, embedding, reranker). Generated code is produced by protoc:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       retrieval.proto
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative retrieval.proto
