// Package shell generates the shell hook source for transcript capture and
// command-not-found routing. Zsh registers the capture routine as preexec;
// Bash reconstructs the typed line from history inside a DEBUG trap.
package shell
