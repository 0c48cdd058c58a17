// Package movingai reads the MovingAI benchmark file formats: the ".map"
// grid format and the ".scen" scenario format.
//
// A .map file starts with a four-line header:
//
//	type octile
//	height H
//	width W
//	map
//
// followed by H rows of W characters each. The characters '.', 'G', and 'S'
// are passable; every other character is a wall.
//
// A .scen file holds one scenario per line:
//
//	bucket map_name map_w map_h sx sy gx gy [opt]
//
// An optional leading "version ..." line is skipped. The trailing opt
// column (the reference optimal path cost) is itself optional; when absent
// it is reported as 0.
package movingai
