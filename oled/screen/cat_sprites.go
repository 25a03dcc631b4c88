package screen

import "oledkb/oled/fb"

const (
	catWidth  = 32
	catHeight = 28
)

var (
	catAwake = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"...........#.......#............",
		"...........##.....##............",
		"...........#########............",
		"..........###########...........",
		"..........##..###..##...........",
		"..........###########...........",
		"..........#####.#####...........",
		"...........#########............",
		"............#######.............",
		"...........#########............",
		"..........###########...........",
		".........#############..........",
		".........#############...##.....",
		".........#############....#.....",
		".........#############....#.....",
		".........#############...#......",
		"..........###########.###.......",
		".........###..###..###..........",
	)
	catSleep1 = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"........................###.....",
		"..........................#.....",
		".........................#......",
		"........................###.....",
		"................................",
		".......#...#....................",
		".......##.##....................",
		"......#######...................",
		"......#.#.####################..",
		"......##########################",
		"......##########################",
		".......#########################",
		"........######################..",
	)
	catSleep2 = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"..........................####..",
		"............................#...",
		"...........................#....",
		"..........................####..",
		"........................##......",
		"........................#.......",
		"........................##......",
		"................................",
		".......#...#....................",
		".......##.##....................",
		"......#######...................",
		"......#.#.####################..",
		"......##########################",
		"......##########################",
		".......#########################",
		"........######################..",
	)
	catWalk1 = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"........................#...#...",
		"........................##.##...",
		"........................#####...",
		".......................#######..",
		".......................##.#.##..",
		".......................#######..",
		".......................###.###..",
		"..#...................#######...",
		"..#...................######....",
		"...#.################.#####.....",
		"....##################..........",
		".....##################.........",
		".....##################.........",
		".....##################.........",
		"......#.#.........#.#...........",
		"......#..#.......#...#..........",
		".....#...#......#.....#.........",
		"....##...##....##.....##........",
	)
	catWalk2 = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"........................#...#...",
		"........................##.##...",
		"........................#####...",
		".......................#######..",
		".......................##.#.##..",
		".......................#######..",
		".......................###.###..",
		"..#...................#######...",
		"..#...................######....",
		"...#.################.#####.....",
		"....##################..........",
		".....##################.........",
		".....##################.........",
		".....##################.........",
		"......#.#.........#.#...........",
		"......#.#.........#.#...........",
		"......#.#.........#.#...........",
		".....##.##.......##.##..........",
	)
	catJump = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"..........................#...#.",
		"..........................##.##.",
		"..........................#####.",
		".........................#######",
		".........................##.#.##",
		".........................#######",
		".........................###.###",
		"........................######..",
		"......................######....",
		"..##.............#########......",
		"....##.......###########........",
		"......#################.........",
		".....##################.........",
		"....######.........####.........",
		"...##..............#..##........",
		"..##...............#....#.......",
		".#..................#...........",
	)
	catFall = catSprite(
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"................................",
		"........................#...#...",
		"........................##.##...",
		"........................#####...",
		".......................#######..",
		".......................##.#.##..",
		".......................#######..",
		".......................###.###..",
		"..##.................#######.#..",
		"...##..............########..#..",
		".....##.################.....#..",
		"......##################........",
		".....####################.......",
		"....#.##################.#......",
		"...#..#################...#.....",
		"..#...#.#.........#.#......#....",
		"......#..#.......#..#...........",
		".....#....#.....#....#..........",
	)
)

var (
	catWalkRight = [2]fb.Bitmap{catWalk1, catWalk2}
	catWalkLeft  = [2]fb.Bitmap{mirror(catWalk1), mirror(catWalk2)}
	catSleep     = [2]fb.Bitmap{catSleep1, catSleep2}
	catJumpLeft  = mirror(catJump)
	catFallLeft  = mirror(catFall)
)

// catSprite packs rows of '#' (set) and '.' (clear) into a bitmap.
func catSprite(rows ...string) fb.Bitmap {
	b := fb.Bitmap{Width: catWidth, Height: catHeight}
	pages := b.Pages()
	b.Bytes = make([]byte, catWidth*pages)
	for y, row := range rows {
		for x := 0; x < len(row) && x < catWidth; x++ {
			if row[x] == '#' {
				b.Bytes[x*pages+y/8] |= 1 << uint(y%8)
			}
		}
	}
	return b
}

// mirror flips b horizontally.
func mirror(b fb.Bitmap) fb.Bitmap {
	out := fb.Bitmap{Width: b.Width, Height: b.Height, Bytes: make([]byte, len(b.Bytes))}
	p := b.Pages()
	w := int(b.Width)
	for x := 0; x < w; x++ {
		copy(out.Bytes[x*p:(x+1)*p], b.Bytes[(w-1-x)*p:(w-x)*p])
	}
	return out
}
