// Package caps defines the MySQL client capability bitmask.
//
// See https://dev.mysql.com/doc/internals/en/capability-flags.html
package caps

import "strings"

// Flags is the capability bitmask a client offers to the server during the
// handshake. Each bit maps to one Protocol::CapabilityFlags entry.
type Flags uint32

const (
	ClientLongPassword Flags = 1 << iota
	ClientFoundRows
	ClientLongFlag
	ClientConnectWithDB
	ClientNoSchema
	ClientCompress
	ClientODBC
	ClientLocalFiles
	ClientIgnoreSpace
	ClientProtocol41
	ClientInteractive
	ClientSSL
	ClientIgnoreSIGPIPE
	ClientTransactions
	ClientReserved
	ClientSecureConnection
	ClientMultiStatements
	ClientMultiResults
	ClientPSMultiResults
	ClientPluginAuth
	ClientConnectAttrs
	ClientPluginAuthLenEncClientData
	ClientCanHandleExpiredPasswords
	ClientSessionTrack
	ClientDeprecateEOF
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{ClientLongPassword, "LONG_PASSWORD"},
	{ClientFoundRows, "FOUND_ROWS"},
	{ClientLongFlag, "LONG_FLAG"},
	{ClientConnectWithDB, "CONNECT_WITH_DB"},
	{ClientNoSchema, "NO_SCHEMA"},
	{ClientCompress, "COMPRESS"},
	{ClientODBC, "ODBC"},
	{ClientLocalFiles, "LOCAL_FILES"},
	{ClientIgnoreSpace, "IGNORE_SPACE"},
	{ClientProtocol41, "PROTOCOL_41"},
	{ClientInteractive, "INTERACTIVE"},
	{ClientSSL, "SSL"},
	{ClientIgnoreSIGPIPE, "IGNORE_SIGPIPE"},
	{ClientTransactions, "TRANSACTIONS"},
	{ClientReserved, "RESERVED"},
	{ClientSecureConnection, "SECURE_CONNECTION"},
	{ClientMultiStatements, "MULTI_STATEMENTS"},
	{ClientMultiResults, "MULTI_RESULTS"},
	{ClientPSMultiResults, "PS_MULTI_RESULTS"},
	{ClientPluginAuth, "PLUGIN_AUTH"},
	{ClientConnectAttrs, "CONNECT_ATTRS"},
	{ClientPluginAuthLenEncClientData, "PLUGIN_AUTH_LENENC_CLIENT_DATA"},
	{ClientCanHandleExpiredPasswords, "CAN_HANDLE_EXPIRED_PASSWORDS"},
	{ClientSessionTrack, "SESSION_TRACK"},
	{ClientDeprecateEOF, "DEPRECATE_EOF"},
}

// Has reports whether every bit in mask is set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// With returns f with every bit in mask set.
func (f Flags) With(mask Flags) Flags { return f | mask }

// Without returns f with every bit in mask cleared.
func (f Flags) Without(mask Flags) Flags { return f &^ mask }

// String lists the set bits by protocol name, pipe-separated.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
