// Package typechecker implements the FormalLang static semantics. It decides,
// without any notion of memory, whether a program is well formed: every
// identifier resolves to a declaration in scope and no declaration shadows an
// existing name. Checking threads a set of declared names through statements;
// sequencing is the only construct that propagates declarations forward, so
// names introduced inside an if or while body stay local to it. A program the
// checker accepts never trips the interpreter's undeclared-variable or
// redeclaration faults.
//
// Free is checked conservatively: a freed name stays in the tracked set,
// because static structure alone cannot tell whether a conditional branch
// actually executed the free. Accepted programs can therefore still fault at
// runtime on a conditionally freed variable; that gap is part of the language
// definition, not a checker defect.
package typechecker
