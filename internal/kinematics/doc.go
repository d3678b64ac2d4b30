// Package kinematics maps joint angles to planar joint positions.
//
// For a row with angles (q0, q1) the joints of the unit-length double
// pendulum are
//
//	joint0 = (cos q0, sin q0)
//	joint1 = joint0 + (cos(q0+q1), sin(q0+q1))
//
// [Compute] evaluates this eagerly for a whole [dynamo.Table] and keeps the
// results as four parallel sequences in a [Trajectory].
package kinematics
