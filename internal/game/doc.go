// Package game implements the guess-the-number loop.
//
// A Game owns one secret number for its lifetime. Run prints an
// invitation, then repeats a prompt/read/parse/compare cycle until a guess
// equals the secret:
//
//	AwaitingInput --line--> Comparing --Less/Greater--> AwaitingInput
//	                                  --Equal---------> Won
//
// Lines that do not parse as an unsigned 32-bit integer are discarded
// and the prompt is repeated without any other output. Guesses outside
// the secret's range are still compared. A read failure, end of input
// included, ends Run with an *InputError.
package game
