package kernels

// Cody-Waite split of π/2: Pio2_1 has its low mantissa bits cleared so
// k*pio2_1 is exact for the quadrant counts the reduction supports.
const (
	twoOverPi = 0.6366197723675814
	pio2_1    = 1.5707963267341256
	pio2_2    = 6.077100506506192e-11
	pio2_3    = 2.0222662487959506e-21
)

// Minimax coefficients on [-π/4, π/4].
const (
	sinS1 = -1.66666666666666324348e-01
	sinS2 = 8.33333333332248946124e-03
	sinS3 = -1.98412698298579493134e-04
	sinS4 = 2.75573137070700676789e-06
	sinS5 = -2.50507602534068634195e-08
	sinS6 = 1.58969099521155010221e-10

	cosC1 = -0.5
	cosC2 = 4.16666666666666019037e-02
	cosC3 = -1.38888888888741095749e-03
	cosC4 = 2.48015872894767294178e-05
	cosC5 = -2.75573143513906633035e-07
	cosC6 = 2.08757232129817482790e-09
	cosC7 = -1.13596475577881948265e-11
)

// Exp reduction and Taylor coefficients.
const (
	expLn2Hi  = 0.6931471803691238
	expLn2Lo  = 1.9082149292705877e-10
	expInvLn2 = 1.4426950408889634

	expOverflow  = 709.782712893384
	expUnderflow = -745.1332191019411

	expC2  = 0.5
	expC3  = 0.16666666666666666
	expC4  = 0.041666666666666664
	expC5  = 0.008333333333333333
	expC6  = 0.001388888888888889
	expC7  = 0.0001984126984126984
	expC8  = 2.48015873015873e-05
	expC9  = 2.7557319223985893e-06
	expC10 = 2.755731922398589e-07
	expC11 = 2.505210838544172e-08
)
