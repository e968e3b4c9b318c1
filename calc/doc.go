// Package calc implements the expression pipeline of the scientific
// calculator.
//
// A line of input passes through three stages:
//
//  1. [Tokenize] scans the text into [Token] values, substituting the
//     values of exported constants from a [Table].
//  2. [ToPostfix] reorders the infix tokens into postfix (RPN) order using
//     the shunting yard algorithm.
//  3. [EvalPostfix] reduces the postfix tokens to a single float64 with a
//     working stack.
//
// [Evaluate] runs the whole pipeline for one line and also recognizes the
// assignment form
//
//	export NAME = EXPRESSION
//
// which evaluates EXPRESSION and stores the result in the table under NAME.
//
// # Syntax
//
// Operators, from lowest to highest precedence:
//
//	+ -    addition, subtraction (left-associative)
//	* /    multiplication, division (left-associative)
//	^      exponentiation (right-associative)
//
// Functions take a single argument in degrees: sin, cos, tg (tangent) and
// ctg (cotangent). A leading minus negates the operand that immediately
// follows it, so "-2^2" is 4 and "2^-(1+1)" is 0.25.
//
// # Errors
//
// Every failure is an [*Error] of kind [KindSyntax] (tokenizer and
// converter) or [KindEvaluation] (evaluator). Use [errors.Is] with the
// sentinels, e.g. [ErrDivisionByZero], or with [ErrSyntax] and
// [ErrEvaluation] to test the kind alone.
package calc
