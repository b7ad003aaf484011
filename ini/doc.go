// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for the INI dialect used by
EditorConfig files. See https://spec.editorconfig.org/.

Syntax

A file is Unicode text encoded in UTF-8. A leading byte order mark is ignored.
Lines may end in LF or CRLF.

A file consists of an optional preamble followed by zero or more sections.
A section is started by writing a glob pattern in square brackets ('[' and
']') on its own line and ends at the next section header or the end of file:

	[*.{go,mod}]
	indent_style = tab

The pattern is everything between the first '[' and the last ']' on the line,
so patterns may themselves contain brackets:

	[[Mm]akefile]

A property is a name and value written on a single line, separated by an
equals sign ('=') or a colon (':'). The first separator on the line wins, so
values may contain either character:

	name = value
	name: value

Properties encountered before the first section header make up the preamble.

Whitespace at the beginning or end of lines, around patterns, around names,
and around values is ignored. An empty value is permitted. If the first
non-whitespace character in a line is a semicolon (';') or a hash ('#'), then
the line is a comment. Inline comments are not supported.

Any other line is a syntax error. Parse stops at the first such line and
reports its 1-based line number.

Names and values are stored exactly as written. Case folding is left to the
caller.
*/
package ini
