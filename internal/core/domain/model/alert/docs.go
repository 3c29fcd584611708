// Package alert models monitoring alerts and the silences operators create
// for them through chat commands.
//
// A silence request arrives as a flat attribute string:
//
//	comment="core switch maintenance" duration=2h region=jkt link=uplink-1
//
// comment is required and exactly one of duration or end must be given. Every
// other key becomes an equality matcher.
package alert
