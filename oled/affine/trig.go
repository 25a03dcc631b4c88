package affine

// sinTable holds sin(d°)·4096 for d in [0, 90].
var sinTable = [91]int16{
	0, 71, 143, 214, 286, 357, 428, 499, 570, 641,
	711, 782, 852, 921, 991, 1060, 1129, 1198, 1266, 1334,
	1401, 1468, 1534, 1600, 1666, 1731, 1796, 1860, 1923, 1986,
	2048, 2110, 2171, 2231, 2290, 2349, 2408, 2465, 2522, 2578,
	2633, 2687, 2741, 2793, 2845, 2896, 2946, 2996, 3044, 3091,
	3138, 3183, 3228, 3271, 3314, 3355, 3396, 3435, 3474, 3511,
	3547, 3582, 3617, 3650, 3681, 3712, 3742, 3770, 3798, 3824,
	3849, 3873, 3896, 3917, 3937, 3956, 3974, 3991, 4006, 4021,
	4034, 4046, 4056, 4065, 4074, 4080, 4086, 4090, 4094, 4095,
	4096,
}

func sinDeg(d int) Num {
	d %= 360
	if d < 0 {
		d += 360
	}
	switch {
	case d <= 90:
		return Num(sinTable[d])
	case d <= 180:
		return Num(sinTable[180-d])
	case d <= 270:
		return -Num(sinTable[d-180])
	default:
		return -Num(sinTable[360-d])
	}
}

// Sin returns the sine of deg degrees, interpolating linearly between whole
// degrees of the lookup table.
func Sin(deg Num) Num {
	d := Floor(deg)
	frac := deg - I(d)
	a, b := sinDeg(d), sinDeg(d+1)
	return a + (b - a).Mul(frac)
}

// Cos returns the cosine of deg degrees.
func Cos(deg Num) Num { return Sin(deg + I(90)) }
