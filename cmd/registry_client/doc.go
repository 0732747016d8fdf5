// Package main (cmd/registry_client) is a command-line client for the fee
// recipient registry server.
//
//	registry_client --server-addr=http://127.0.0.1:3000 set <pubkey> <address>
//	registry_client get <pubkey>
//	registry_client list
package main
