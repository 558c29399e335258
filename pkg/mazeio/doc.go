// Package mazeio provides JSON import and export for mazes.
//
// The wire format uses the textual coordinate forms: cells serialize as
// "x,y" strings and links as "x,y-x,y" pairs. Link endpoints may appear in
// either order on input; they are normalized on import.
//
// # Format
//
//	{
//	  "width": 2,
//	  "height": 2,
//	  "cells": ["0,0", "1,0", "0,1", "1,1"],
//	  "links": ["0,0-1,0", "1,0-1,1", "0,1-1,1"],
//	  "start": "0,0",
//	  "end": "1,1"
//	}
//
// This is the contract the CLI, HTTP API, and renderer all read; they never
// mutate a maze through it.
package mazeio
