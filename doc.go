// Package datefmt renders calendar dates according to a three-part format
// pattern mini-language.
// Invariants:
//   - A pattern is either fully valid or rejected with *InvalidFormatError;
//     no partial output is ever produced.
//   - A pattern holds exactly one year token, one month token, and one day
//     token, in any order, joined by a single repeated separator byte from
//     the set {'/', '.', '-', ' '}.
//   - Tokens are matched exactly; only the lowercase spellings are defined.
//   - Name tables are immutable package-level arrays (English, per CLDR
//     en-gregorian); rendering reads only those tables and its arguments,
//     so every operation is safe for unsynchronized concurrent use.
package datefmt
