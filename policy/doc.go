// Package policy provides optional declarative guard rails that can be
// applied on top of a running engine – for example to cap the number of
// consumed symbols or to block selected symbols outright.
package policy
